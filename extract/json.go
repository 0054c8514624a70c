package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fwojciec/tourpkg"
)

// flexInt decodes an integer written either as a JSON number or as a
// numeric string. The response APIs use both forms for the same field.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return tourpkg.Errorf(tourpkg.EINVALID, "%s is not an integer", b)
	}
	*n = flexInt(v)
	return nil
}

// decodeJSON unmarshals an artifact, reporting failures as EINVALID.
func decodeJSON(artifact, text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return tourpkg.Errorf(tourpkg.EINVALID, "%s: %v", artifact, err)
	}
	return nil
}

func missing(artifact, field string) error {
	return tourpkg.Errorf(tourpkg.EINVALID, "%s: %s missing", artifact, field)
}
