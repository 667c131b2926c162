// Package report renders a reading as the downloadable PDF study: a cover,
// one page per pillar in display order, and a closing synthesis page.
package report
