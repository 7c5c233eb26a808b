package service

import "time"

const (
	defaultListLimit = 50
	maxListLimit     = 1000

	// defaultListWindow is the number of recent blocks scanned when a listing
	// names no heights.
	defaultListWindow uint32 = 144
	maxListWindow     uint32 = 2016

	defaultScanChunk uint32 = 500

	sleepDuration     = 5 * time.Second
	longSleepDuration = 30 * time.Second

	transitionFlushSize     = 100
	transitionFlushInterval = time.Second
	transitionFlushRPS      = 10
)
