package form

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hejijunhao/kidneyrisk/internal/engine/encoder"
)

// ValuesFromMap converts a decoded JSON object of field name to number or
// string into form values, so API and CLI submissions go through Collect
// like the HTML form does. Null values are treated as absent.
func ValuesFromMap(m map[string]any) (url.Values, error) {
	values := make(url.Values, len(m))
	for name, raw := range m {
		switch v := raw.(type) {
		case nil:
		case string:
			values.Set(name, v)
		case json.Number:
			values.Set(name, v.String())
		case float64:
			values.Set(name, formatNumber(v))
		case int:
			values.Set(name, strconv.Itoa(v))
		case int64:
			values.Set(name, strconv.FormatInt(v, 10))
		default:
			return nil, &encoder.EncodingError{Field: name, Reason: fmt.Sprintf("unsupported value type %T", raw)}
		}
	}
	return values, nil
}
