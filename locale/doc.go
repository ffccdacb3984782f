// Package locale renders validation failures in the caller's language.
//
// Message catalogs map a language code to failure-code templates with
// %{name} placeholders, filled from each failure's rule parameters plus the
// reserved names "property" and "value". Catalogs load through a Source:
// MapSource for in-code catalogs, FSSource for YAML or JSON files from any
// fs.FS, including embedded filesystems. Default returns a ready translator
// backed by the embedded English and Spanish catalogs.
//
// Language negotiation uses golang.org/x/text: requested codes like "en-US"
// or "es-419" resolve to the closest loaded catalog, and anything
// unmatched falls back to the configured fallback language.
//
// # Usage
//
//	t, err := locale.New(ctx, locale.NewFSSource(os.DirFS("config"), "locales"))
//	if err != nil {
//	    return err
//	}
//
//	result := userValidator.Validate(req)
//	if !result.Valid() {
//	    for _, f := range t.Localize(result, r.Header.Get("Accept-Language")) {
//	        fmt.Println(f.Property, f.Message)
//	    }
//	}
//
// Localize never mutates the Result; it returns a re-rendered copy of the
// failures, so one result can serve responses in several languages.
//
// # Error Handling
//
// Construction fails with ErrNoCatalogs when the source is empty and with
// ErrInvalidLanguage when a catalog key is not a BCP 47 code. A missing
// template at render time is not an error: the failure keeps the default
// message produced by its rule.
package locale
