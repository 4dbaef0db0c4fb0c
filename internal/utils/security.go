package utils

// MaskToken masks a bot token for secure logging
// Keeps first 4 and last 4 characters visible, masks the rest
//
// Examples:
//   - "12345:abcdefgh" -> "1234****efgh"
//   - "short" -> "****"
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}

	return token[:4] + "****" + token[len(token)-4:]
}
