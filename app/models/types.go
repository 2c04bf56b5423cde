package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is stored as a single comma-joined text column. Keeping the raw
// text in one column lets product search LIKE against the serialized tags.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if raw == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(raw, ",")
	return nil
}

// NavigationCategory is one column block inside a navigation menu.
type NavigationCategory struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// NavigationItem is a featured link inside a navigation menu.
type NavigationItem struct {
	Name      string `json:"name"`
	Href      string `json:"href"`
	Highlight string `json:"highlight,omitempty"`
}

type NavigationCategoryList []NavigationCategory

func (l NavigationCategoryList) Value() (driver.Value, error) {
	if l == nil {
		l = NavigationCategoryList{}
	}
	return json.Marshal(l)
}

func (l *NavigationCategoryList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type NavigationItemList []NavigationItem

func (l NavigationItemList) Value() (driver.Value, error) {
	if l == nil {
		l = NavigationItemList{}
	}
	return json.Marshal(l)
}

func (l *NavigationItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, dest)
	}

	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
