package subjects

// Catalog of school subjects per grade level. The lists mirror the national
// curriculum groupings used by the platform; AGAMA is a placeholder that
// expands to one entry per religion in flows where students pick their own.

var perGradeLevel = map[string][]string{
	"SD": {
		"PENDIDIKAN PANCASILA", "B.INDONESIA", "B.INGGRIS", "MATEMATIKA",
		"IPA", "IPS", "SENI BUDAYA", "PRAKARYA", "PJOK", "INFORMATIKA",
		"B.DAERAH", "BIMBINGAN KONSELING", "AGAMA",
	},
	"SMP": {
		"PENDIDIKAN PANCASILA", "B.INDONESIA", "B.INGGRIS", "MATEMATIKA",
		"IPA", "IPS", "SENI BUDAYA", "PRAKARYA", "PJOK", "INFORMATIKA",
		"B.DAERAH", "BIMBINGAN KONSELING", "AGAMA",
	},
	"SMA": {
		"PENDIDIKAN PANCASILA", "B.INDONESIA", "B.INGGRIS", "MATEMATIKA",
		"IPA", "IPS", "SENI BUDAYA", "PRAKARYA", "PJOK", "INFORMATIKA",
		"B.DAERAH", "BIMBINGAN KONSELING", "AGAMA",
	},
}

var Religions = []string{"ISLAM", "KRISTEN", "BUDHA", "HINDU", "KONGHUCU"}

// ForGradeLevel returns the subject list for a grade level, or nil for an
// unknown level.
func ForGradeLevel(level string) []string {
	src, ok := perGradeLevel[level]
	if !ok {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// WithReligions returns the subject list with AGAMA replaced by the individual
// religion subjects, as used by the reflection and exam flows.
func WithReligions(level string) []string {
	src := ForGradeLevel(level)
	if src == nil {
		return nil
	}
	out := make([]string, 0, len(src)+len(Religions))
	for _, s := range src {
		if s == "AGAMA" {
			continue
		}
		out = append(out, s)
	}
	return append(out, Religions...)
}

// IsValid reports whether the subject belongs to the grade level's catalog,
// accepting both the AGAMA placeholder and the expanded religion subjects.
func IsValid(level, subject string) bool {
	for _, s := range ForGradeLevel(level) {
		if s == subject {
			return true
		}
	}
	for _, r := range Religions {
		if r == subject {
			return true
		}
	}
	return false
}
