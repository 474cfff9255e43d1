package lexical

// ParseBoolean accepts the four boolean literals true, false, 1 and 0.
func ParseBoolean(s string) (bool, *Error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	case "":
		return false, errAt(KindEmpty, 0)
	}
	return false, errKind(KindInvalid)
}
