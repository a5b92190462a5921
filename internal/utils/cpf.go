package utils

// ValidateCPF validates a CPF number
// It checks if the CPF has 11 digits and validates the check digits
func ValidateCPF(cpf string) bool {
	cpf = DigitsOnly(cpf)
	if len(cpf) != 11 {
		return false
	}

	// Repeated digits pass the checksum but are never issued
	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpf[9] == cpfCheckDigit(cpf[:9]) && cpf[10] == cpfCheckDigit(cpf[:10])
}

// cpfCheckDigit computes the mod-11 check digit over the given prefix.
func cpfCheckDigit(prefix string) byte {
	weight := len(prefix) + 1
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + 11 - remainder)
}
