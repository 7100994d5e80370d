package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr    string
	LogLevel    string
	RoomCodeLen int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		RoomCodeLen: getenvInt("ROOM_CODE_LEN", 6),
	}
}
