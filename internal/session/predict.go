package session

// predictDigit infers the value of one code position from its
// candidate cells. Resolution order:
//
//  1. exactly one candidate is marked included → that candidate;
//  2. all candidates but one are excluded → the survivor
//     (elimination);
//  3. otherwise unresolved.
//
// Returns the digit 1..5, or 0 when unresolved. Two or more included
// candidates always yield unresolved, regardless of exclusions.
func predictDigit(cells []Mark) int {
	included := 0 // candidate of the sole included cell
	survivor := 0 // candidate of the sole non-excluded cell
	includedDup := false
	survivorDup := false
	for i, m := range cells {
		if m == MarkExcluded {
			continue
		}
		if m == MarkIncluded {
			if included == 0 {
				included = i + 1
			} else {
				includedDup = true
			}
		}
		if survivor == 0 {
			survivor = i + 1
		} else {
			survivorDup = true
		}
	}
	if included != 0 && !includedDup {
		return included
	}
	if survivor != 0 && !survivorDup {
		return survivor
	}
	return 0
}

// PredictDigit infers one code position from the digit board.
// pos is 0..2; returns 0 when unresolved.
func (t *Tools) PredictDigit(pos int) int {
	if pos < 0 || pos >= digitPositions {
		return 0
	}
	return predictDigit(t.Digits[pos*digitCandidates : (pos+1)*digitCandidates])
}

// PredictCode infers the player's working guess from the digit board.
// Positions resolve in order; the first unresolved position makes the
// whole code unresolved and returns the empty string.
func (t *Tools) PredictCode() string {
	code := make([]byte, 0, digitPositions)
	for pos := 0; pos < digitPositions; pos++ {
		d := t.PredictDigit(pos)
		if d == 0 {
			return ""
		}
		code = append(code, '0'+byte(d))
	}
	return string(code)
}
