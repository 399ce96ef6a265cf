package locale

// Message key constants for the reply catalog
const (
	// Start command reply. f1 is the HTML-escaped web app URL.
	StartGreeting = "StartGreeting"

	// Label of the inline URL button
	StartButtonVisit = "StartButtonVisit"
)
