// Package domain holds the account and saved-calculation entities that sit
// around the numerology engine. The engine itself lives in the numerology
// subpackage and the text catalog in interpretation. Nothing here depends on
// storage or transport.
package domain
