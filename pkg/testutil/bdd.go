package testutil

import "testing"

// Given, When and Then nest subtests so a failing case reads as a sentence
// in go test output.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}

// Rule is one row of a validation table: the input that breaks the rule and
// the message the caller should see.
type Rule[T any] struct {
	Name    string
	Mutate  func(*T)
	Message string
}

// CheckRules starts every rule from a fresh valid value, applies its
// mutation and hands the result to check.
func CheckRules[T any](t *testing.T, valid func() T, rules []Rule[T], check func(t *testing.T, v *T, message string)) {
	t.Helper()
	for _, rule := range rules {
		When(t, rule.Name, func(t *testing.T) {
			v := valid()
			rule.Mutate(&v)
			check(t, &v, rule.Message)
		})
	}
}
