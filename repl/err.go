package repl

import (
	"github.com/ezrec/firefaith/translate"
)

var f = translate.From

type ErrParseByte string

func (err ErrParseByte) Error() string {
	return f("'%v' is not a hex byte", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrByteRange string

func (err ErrByteRange) Error() string {
	return f("'%v' does not fit in a byte", string(err))
}
