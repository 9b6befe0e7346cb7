/*
File    : sparrow/std/io.go
*/
package std

import (
	"strconv"
	"strings"

	"sparrow/objects"
)

// inputFn implements input(prompt?): read one line, return it as a String.
// An optional prompt argument is emitted first.
func inputFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) > 0 {
		rt.Emit(args[0].String())
	}
	line, err := rt.ReadLine()
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.TrimRight(line, "\r\n")), nil
}

// inputIntFn implements input_int(prompt?): read one line and parse it as
// a Number, or return a RuntimeError string rather than failing the whole
// evaluation when the line does not parse as a number.
func inputIntFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) > 0 {
		rt.Emit(args[0].String())
	}
	line, err := rt.ReadLine()
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(line)
	if i, convErr := strconv.ParseInt(text, 10, 64); convErr == nil {
		return objects.NewInt(i), nil
	}
	if f, convErr := strconv.ParseFloat(text, 64); convErr == nil {
		return objects.NewFloat(f), nil
	}
	return objects.NewString("RuntimeError: input_int could not parse " + strconv.Quote(text) + " as a number"), nil
}
