package model

import "unicode/utf8"

type Kind string

const (
	KindTweets Kind = "tweets"
	KindFormal Kind = "formal"
	KindCasual Kind = "casual"
)

// TweetCharLimit is advisory only. Items over it are reported, never rejected.
const TweetCharLimit = 280

type TransformRequest struct {
	SourceText string
	Kind       Kind
}

type TransformResult struct {
	RawText      string
	ErrorMessage string
	ModelUsed    string
}

func (r TransformResult) Failed() bool {
	return r.ErrorMessage != ""
}

type Item struct {
	Text        string
	SourceOrder int
}

func (i Item) Length() int {
	return utf8.RuneCountInString(i.Text)
}

func (i Item) OverLimit() bool {
	return i.Length() > TweetCharLimit
}
