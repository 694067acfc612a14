package boolutils

import "strconv"

// IsBool checks if the given string is a boolean literal accepted by strconv.ParseBool
// (1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False).
func IsBool(str string) bool {
	_, err := strconv.ParseBool(str)
	return err == nil
}

// ToBoolWithError converts the given string to a bool and returns any error that occurred during conversion.
func ToBoolWithError(str string) (bool, error) {
	return strconv.ParseBool(str)
}
