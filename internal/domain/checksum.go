package domain

import "strings"

var (
	cbuWeights  = [2]int{1, 2}
	cvuWeights  = [2]int{2, 1}
	cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// digitsOnly drops every non-digit rune.
func digitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mod10Fold computes a control digit over digits using an alternating weight
// cycle. Products above 9 are folded into the sum of their two digits.
// digits must already be validated as ASCII 0-9.
func mod10Fold(digits string, weights [2]int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		p := int(digits[i]-'0') * weights[i%len(weights)]
		if p > 9 {
			p = p/10 + p%10
		}
		sum += p
	}
	return (10 - sum%10) % 10
}

// mod11CuitCheck returns the expected CUIT check digit for the first ten
// digits. Results of 11 map to 0 and results of 10 map to 9.
func mod11CuitCheck(digits string) int {
	sum := 0
	for i, w := range cuitWeights {
		sum += int(digits[i]-'0') * w
	}
	check := 11 - sum%11
	switch check {
	case 11:
		return 0
	case 10:
		return 9
	}
	return check
}

// validControlPair checks a 22-digit issuer/account/control string against
// a weight cycle.
func validControlPair(digits string, weights [2]int) bool {
	issuer, account, control := digits[0:4], digits[4:20], digits[20:22]
	if int(control[0]-'0') != mod10Fold(issuer, weights) {
		return false
	}
	return int(control[1]-'0') == mod10Fold(account, weights)
}
