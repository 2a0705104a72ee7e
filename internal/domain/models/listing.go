package models

import "time"

// JobListing represents a single scraped job posting that passed
// screening. Each field matches one column of the job_listings table.
type JobListing struct {
	FoundAt     time.Time
	Keyword     string
	Title       string
	URL         string
	Description string
	Location    string
}

// NewsItem is one piece of local information scraped from a county
// news page: a short category plus the detail line shown in reports.
type NewsItem struct {
	Category string
	Detail   string
}

// CountyReport groups the scraped items for one county.
type CountyReport struct {
	County string
	Items  []NewsItem
}
