// Package filter implements two-stage (draft, applied) filtering of locally held lists.
package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

// Kind selects how a field's value is compared to the filter value.
type Kind int

const (
	// KindExact compares strings for equality.
	KindExact Kind = iota
	// KindFold compares strings case-insensitively.
	KindFold
	// KindDate compares calendar dates; the filter value is YYYY-MM-DD.
	KindDate
	// KindContains matches when any of the field's values contains the filter
	// value, case-insensitively.
	KindContains
	// KindCustom delegates to the field's Match function.
	KindCustom
)

// Field describes one filterable attribute of T.
type Field[T any] struct {
	Name string
	Kind Kind
	// Values extracts the comparable values of an item. Most fields return one value;
	// multi-valued fields (tags) return several and match when any does.
	Values func(T) []string
	// Match is used by KindCustom fields only.
	Match func(item T, want string) bool
}

// Text builds a single-valued field.
func Text[T any](name string, kind Kind, get func(T) string) Field[T] {
	return Field[T]{Name: name, Kind: kind, Values: func(item T) []string { return []string{get(item)} }}
}

// Date builds a date field from a civil date accessor.
func Date[T any](name string, get func(T) models.Date) Field[T] {
	return Field[T]{Name: name, Kind: KindDate, Values: func(item T) []string { return []string{get(item).String()} }}
}

// Timestamp builds a date field from a timestamp, truncated to its UTC calendar date.
func Timestamp[T any](name string, get func(T) time.Time) Field[T] {
	return Field[T]{Name: name, Kind: KindDate, Values: func(item T) []string {
		ts := get(item)
		if ts.IsZero() {
			return nil
		}
		return []string{models.DateOf(ts.UTC()).String()}
	}}
}

// Custom builds a field with its own match rule.
func Custom[T any](name string, match func(item T, want string) bool) Field[T] {
	return Field[T]{Name: name, Kind: KindCustom, Match: match}
}

// Values maps field names to filter values. An absent or empty value is unset.
type Values map[string]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		if val != "" {
			out[k] = val
		}
	}
	return out
}

// List holds the draft and applied filter state for one list view.
type List[T any] struct {
	fields  map[string]Field[T]
	names   []string
	draft   Values
	applied Values
}

// New builds a list over the given fields.
func New[T any](fields ...Field[T]) *List[T] {
	l := &List[T]{fields: make(map[string]Field[T], len(fields)), draft: Values{}, applied: Values{}}
	for _, f := range fields {
		l.fields[f.Name] = f
		l.names = append(l.names, f.Name)
	}
	sort.Strings(l.names)
	return l
}

// Fields lists the filterable field names.
func (l *List[T]) Fields() []string {
	return append([]string(nil), l.names...)
}

// SetDraft updates the draft state only. An empty value unsets the field.
func (l *List[T]) SetDraft(field, value string) error {
	f, ok := l.fields[field]
	if !ok {
		return fmt.Errorf("unknown filter field %q", field)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(l.draft, field)
		return nil
	}
	if f.Kind == KindDate {
		d, err := models.ParseDate(value)
		if err != nil {
			return err
		}
		value = d.String()
	}
	l.draft[field] = value
	return nil
}

// Apply copies the draft into the applied state.
func (l *List[T]) Apply() {
	l.applied = l.draft.clone()
}

// Revert discards draft edits by copying the applied state back into the draft.
func (l *List[T]) Revert() {
	l.draft = l.applied.clone()
}

// Clear resets both draft and applied state.
func (l *List[T]) Clear() {
	l.draft = Values{}
	l.applied = Values{}
}

// Draft returns a copy of the draft state.
func (l *List[T]) Draft() Values { return l.draft.clone() }

// Applied returns a copy of the applied state.
func (l *List[T]) Applied() Values { return l.applied.clone() }

// Visible returns the source items matching every applied filter, in source order.
func (l *List[T]) Visible(source []T) []T {
	out := make([]T, 0, len(source))
	for _, item := range source {
		if l.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether item satisfies all applied filters.
func (l *List[T]) Matches(item T) bool {
	for name, want := range l.applied {
		f, ok := l.fields[name]
		if !ok || want == "" {
			continue
		}
		if !matchField(f, item, want) {
			return false
		}
	}
	return true
}

func matchField[T any](f Field[T], item T, want string) bool {
	if f.Kind == KindCustom {
		return f.Match != nil && f.Match(item, want)
	}
	for _, got := range f.Values(item) {
		switch f.Kind {
		case KindFold:
			if strings.EqualFold(got, want) {
				return true
			}
		case KindContains:
			if strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
				return true
			}
		default:
			if got == want {
				return true
			}
		}
	}
	return false
}
