package ui

import "log"

func logSaveTheme(err error) {
	log.Printf("save theme failed: %v", err)
}
