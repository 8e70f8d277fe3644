package ptr

func ToBool(b bool) *bool { return &b }

func ToString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToFloat64(f float64) *float64 { return &f }

func StringPtr(s string) *string { return &s }
