package output

import (
	"fmt"
	"io"
	"reflect"
)

// TextFormatter writes values in their plain form, one per line.
// Strings and fmt.Stringer values are written as is; slices are written
// element by element. Anything else is rendered as a table.
type TextFormatter struct{}

// Format writes data as plain text.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch v := data.(type) {
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if err := f.Format(w, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	return (&TableFormatter{}).Format(w, data)
}
