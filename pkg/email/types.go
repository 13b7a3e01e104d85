package email

// Message is a single outbound mail. TextBody is required; HTMLBody is
// attached as the rich alternative when set.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
