package modelcompile

import (
	"bytes"
	"encoding/json"

	"github.com/derekparker/trie"
)

// warnDuplicateKeys re-walks the raw JSON object token-by-token looking for
// a table that repeats the same string key twice, and logs one warning per
// repeat through the package tracer.
//
// encoding/json's map decoding silently keeps the last occurrence of a
// repeated object key, so by the time a models/<lang>.json file has been
// Unmarshal'd into a rawModel, a duplicate-key typo in the source file is
// already invisible and resolves last-write-wins. This walks the token
// stream directly and records every key it sees per table in a trie, which
// reports the collision the moment the second occurrence arrives. The
// repeat is not fatal (the model format tolerates it the same way), but it
// is always worth a log line, since it almost always means a copy-paste
// mistake in the source JSON silently dropped a score.
//
// Malformed JSON is not reported here; loadJSON's own json.Unmarshal pass is
// the source of truth for that, so this function stays silent (not fatal)
// on any token-stream error rather than duplicating ErrMalformedJSON.
func warnDuplicateKeys(data []byte) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return
	}

	for dec.More() {
		tableNameTok, err := dec.Token()
		if err != nil {
			return
		}
		tableName, ok := tableNameTok.(string)
		if !ok {
			return
		}

		open, err := dec.Token()
		if err != nil {
			return
		}
		if delim, ok := open.(json.Delim); !ok || delim != '{' {
			return
		}

		seen := trie.New()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return
			}
			key, ok := keyTok.(string)
			if !ok {
				return
			}
			if _, found := seen.Find(key); found {
				tracer().Errorf("modelcompile: table %s: key %q appears more than once, last write wins", tableName, key)
			} else {
				seen.Add(key, struct{}{})
			}

			// consume the score value without interpreting it; loadJSON's
			// normal Unmarshal pass validates its type.
			if _, err := dec.Token(); err != nil {
				return
			}
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return
		}
	}
}
