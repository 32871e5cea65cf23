package statview

// TrueShootingPct is pts / (2 * (fga + 0.44*fta)).
func TrueShootingPct(pts, fga, fta float64) (float64, bool) {
	denom := 2 * (fga + 0.44*fta)
	if denom == 0 {
		return 0, false
	}
	return pts / denom, true
}

// EffectiveFGPct is (fgm + 0.5*tpm) / fga.
func EffectiveFGPct(fgm, fga, tpm float64) (float64, bool) {
	if fga == 0 {
		return 0, false
	}
	return (fgm + 0.5*tpm) / fga, true
}

func ShootingPct(made, att float64) (float64, bool) {
	if att == 0 {
		return 0, false
	}
	return made / att, true
}

// Possessions estimates one side's possessions from its box score and the
// opponent's defensive rebounds.
func Possessions(fga, fta, fgm, orb, oppDRB, tov float64) (float64, bool) {
	boards := orb + oppDRB
	if boards == 0 {
		return 0, false
	}
	return fga + 0.4*fta - 1.07*(orb/boards)*(fga-fgm) + tov, true
}

// TurnoverPct is tov / (fga + 0.44*fta + tov).
func TurnoverPct(tov, fga, fta float64) (float64, bool) {
	denom := fga + 0.44*fta + tov
	if denom == 0 {
		return 0, false
	}
	return tov / denom, true
}
