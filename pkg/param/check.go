package param

// Check identifies a single predicate of the check catalog.
// Every positive check has a negated counterpart with its own predicate.
type Check string

const (
	CheckPresent    Check = "present"
	CheckNotPresent Check = "not_present"
	CheckEqual      Check = "equal"
	CheckNotEqual   Check = "not_equal"
	CheckIn         Check = "in"
	CheckNotIn      Check = "not_in"

	CheckGreaterThan    Check = "greater_than"
	CheckNotGreaterThan Check = "not_greater_than"
	CheckLessThan       Check = "less_than"
	CheckNotLessThan    Check = "not_less_than"
	CheckBetween        Check = "between"
	CheckNotBetween     Check = "not_between"

	CheckPositive    Check = "positive"
	CheckNotPositive Check = "not_positive"
	CheckNegative    Check = "negative"
	CheckNotNegative Check = "not_negative"

	CheckEmpty          Check = "empty"
	CheckNotEmpty       Check = "not_empty"
	CheckLength         Check = "length"
	CheckNotLength      Check = "not_length"
	CheckShorterThan    Check = "shorter_than"
	CheckNotShorterThan Check = "not_shorter_than"
	CheckLongerThan     Check = "longer_than"
	CheckNotLongerThan  Check = "not_longer_than"
	CheckMatch          Check = "match"
	CheckNotMatch       Check = "not_match"
	CheckContained      Check = "contained"
	CheckNotContained   Check = "not_contained"
	CheckInFold         Check = "in_fold"
	CheckNotInFold      Check = "not_in_fold"
	CheckFormat         Check = "format"
	CheckNotFormat      Check = "not_format"
)

// TranslationKey returns the message catalog key for the check, e.g. "validation.not_in".
func (c Check) TranslationKey() string {
	return "validation." + string(c)
}

func (c Check) String() string {
	return string(c)
}
