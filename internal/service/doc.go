// Package service holds the use cases behind the API and CLI: account
// management and computing, saving and interpreting numerology readings.
// It coordinates the domain packages with the store interfaces and never
// depends on a concrete database.
package service
