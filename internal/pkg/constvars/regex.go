package constvars

const (
	RegexEmail                        = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\{}\[\]\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexTimeSlotLabel                = `^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`
)
