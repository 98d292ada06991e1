package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// MaxInt bounds every decoded Int.
const MaxInt = math.MaxInt32

// Int accepts a JSON number or a numeric string. Empty strings and null decode to zero; values
// outside [-MaxInt, MaxInt] are rejected.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*i = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) {
			return fmt.Errorf("invalid integer %s", data)
		}
		if math.Abs(f) > MaxInt {
			return fmt.Errorf("integer %s out of range", data)
		}
		n = int64(f)
	}
	if n > MaxInt || n < -MaxInt {
		return fmt.Errorf("integer %s out of range", data)
	}
	*i = Int(n)
	return nil
}

func (i Int) Int() int { return int(i) }

// Decode reads a JSON body into v.
func Decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

// PathInt reads an integer route variable.
func PathInt(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}
