package utils

import (
	"math/rand"
	"strconv"
)

// GenerateCheckinCode returns a 6-digit numeric code, uniform over
// [100000, 999999] so there is never a leading zero.
func GenerateCheckinCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}
