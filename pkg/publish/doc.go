// Package publish writes benchmark reports to a local directory or to an
// S3-compatible bucket.
//
// Both backends implement Publisher. Pick one from configuration with New:
//
//	var cfg publish.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	p, err := publish.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	obj, err := publish.YAML(ctx, p, "summary.yaml", summary)
//	if err != nil {
//		return err
//	}
//	fmt.Println(obj.URL)
//
// Keys are slash separated and relative. Keys that escape the destination
// with ".." are rejected with ErrInvalidKey.
//
// S3 errors are classified into the sentinel errors of this package, for
// example a missing bucket becomes ErrBucketNotFound.
package publish
