package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SearchResponse is the raw JSON answer of the lookup service on a 2xx status.
// Connections is a pointer so a missing key can be told from an empty list.
// Message stays raw: the key being present, even as null, means "no connection".
type SearchResponse struct {
	Connections   *[]ConnectionDTO `json:"connections"`
	FromCityImage string           `json:"fromCityImage"`
	ToCityImage   string           `json:"toCityImage"`
	Message       json.RawMessage  `json:"message"`
}

// HasMessage reports whether the body carried a message key.
func (r SearchResponse) HasMessage() bool {
	return r.Message != nil
}

// MessageText returns the message when it is a JSON string, otherwise "".
func (r SearchResponse) MessageText() string {
	var text string
	if err := json.Unmarshal(r.Message, &text); err != nil {
		return ""
	}
	return text
}

// ConnectionDTO is a single connection as sent by the lookup service.
type ConnectionDTO struct {
	ID       FlexibleID `json:"id"`
	FromCity string     `json:"fromCity"`
	ToCity   string     `json:"toCity"`
	Duration float64    `json:"duration"`
	Airfare  float64    `json:"airfare"`
}

// FlexibleID accepts an identifier sent either as a JSON number or a JSON string.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or a string: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*id = FlexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = FlexibleID(n.String())
	return nil
}
