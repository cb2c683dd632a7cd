package extraction

// punchPolicy decides how the punch columns are rendered for a status
// code. Historical revisions of this logic scattered overlapping
// membership checks across branches; this table is the single canonical
// form.
type punchPolicy struct {
	// Suppress: leave/off codes never display punch times, even when the
	// cells contain stray data.
	Suppress bool

	// IgnoreWhenMissing: when a punch cannot be read, leave the field
	// blank instead of flagging it with the missing marker.
	IgnoreWhenMissing bool

	// AlwaysShow: the punch columns are always rendered, missing markers
	// included.
	AlwaysShow bool
}

// Status vocabulary: P present, A absent, W/O week-off, PL/SL/FL/HL
// personal/sick/festival/holiday leave, PAT/MAT paternity/maternity,
// HF/PHF/SHF half-day variants. Unrecognized codes pass through with the
// default (non-suppressing) policy.
func statusPolicies(suppressHalfDays bool) map[string]punchPolicy {
	offDay := punchPolicy{Suppress: true, IgnoreWhenMissing: true}
	working := punchPolicy{AlwaysShow: true}

	policies := map[string]punchPolicy{
		"A":   offDay,
		"W/O": offDay,
		"PL":  offDay,
		"SL":  offDay,
		"FL":  offDay,
		"HL":  offDay,
		"PAT": offDay,
		"MAT": offDay,

		"P":   working,
		"HF":  working,
		"PHF": working,
		"SHF": working,
	}

	if suppressHalfDays {
		policies["HF"] = offDay
		policies["PHF"] = offDay
		policies["SHF"] = offDay
	}

	return policies
}
