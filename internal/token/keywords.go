package token

var keywords = map[string]Kind{
	"int":    KwInt,
	"return": KwReturn,
}

// LookupKeyword reports whether ident is a reserved word and returns its
// kind. Lookup is case-sensitive: only the lowercase spelling counts.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
