// Package schema provides parsing and consistency validation for MARBL
// settings and diagnostics files.
//
// The package is organized into subpackages:
//
//   - ast: tagged value tree that documents are decoded into
//   - parser: YAML/JSON decoding with key order and line numbers preserved
//   - validator: the settings and diagnostics consistency checks
//   - errors: structured violation records
//
// # Basic Usage
//
// Parse and validate a settings file:
//
//	res, err := schema.ValidateSettingsFile("settings.yaml", logger)
//	if err != nil {
//	    log.Fatal(err) // unreadable or malformed file
//	}
//	if !res.Consistent {
//	    for _, v := range res.Violations.Violations {
//	        fmt.Println(v.Error())
//	    }
//	}
//
// The validators never return Go errors for schema violations; every
// violation is logged and recorded, and the Consistent flag carries the
// aggregate verdict.
package schema
