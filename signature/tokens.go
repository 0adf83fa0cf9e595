package signature

import (
	"github.com/pkoukk/tiktoken-go"
)

// cl100kEncoding is the tokenizer encoding used for budget accounting.
const cl100kEncoding = "cl100k_base"

// TokenCounter counts tokens in a piece of text. The budget logic only needs
// counting, so tests can substitute a deterministic stub.
type TokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func (c tiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// EstimateCounter approximates tokens from byte length. It is the fallback
// when the tiktoken encoding cannot be initialized (e.g. offline first run).
type EstimateCounter struct{}

// Count estimates roughly four bytes per token.
func (EstimateCounter) Count(text string) int {
	return len(text)/4 + 1
}

// NewTokenCounter returns the cl100k_base tiktoken counter, or the byte
// estimate when the encoding is unavailable.
func NewTokenCounter() TokenCounter {
	encoding, err := tiktoken.GetEncoding(cl100kEncoding)
	if err != nil {
		return EstimateCounter{}
	}

	return tiktokenCounter{encoding: encoding}
}
