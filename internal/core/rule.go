package core

// Conway is the classic Life rule: birth on 3, survival on 2 or 3.
func Conway(alive uint8, neighbors int) uint8 {
	switch neighbors {
	case 3:
		return 1
	case 2:
		return alive
	}
	return 0
}

// LifeLike builds a rule from birth and survival neighbor counts.
func LifeLike(birth, survive []int) Rule {
	var b, s [9]bool
	for _, n := range birth {
		if n >= 0 && n <= 8 {
			b[n] = true
		}
	}
	for _, n := range survive {
		if n >= 0 && n <= 8 {
			s[n] = true
		}
	}
	return func(alive uint8, neighbors int) uint8 {
		if neighbors < 0 || neighbors > 8 {
			return 0
		}
		if alive == 1 && s[neighbors] || alive == 0 && b[neighbors] {
			return 1
		}
		return 0
	}
}

var (
	// HighLife is B36/S23.
	HighLife = LifeLike([]int{3, 6}, []int{2, 3})
	// DayAndNight is B3678/S34678.
	DayAndNight = LifeLike([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
	// Seeds is B2/S.
	Seeds = LifeLike([]int{2}, nil)
	// LifeWithoutDeath is B3/S012345678.
	LifeWithoutDeath = LifeLike([]int{3}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
)

func init() {
	Register("conway", Conway)
	Register("highlife", HighLife)
	Register("daynight", DayAndNight)
	Register("seeds", Seeds)
	Register("lifewithoutdeath", LifeWithoutDeath)
}
