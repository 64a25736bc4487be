// Package runner drives a benchmark run over a Store.
//
// A run has three stages. Import registers the user agents of a corpus,
// Parse asks every provider about every user agent and stores one result per
// pair, and Evaluate compares the stored results column by column, storing a
// pairwise evaluation per result and an aggregate evaluation per user agent.
// Summary condenses the evaluations into per-provider agreement figures.
//
//	r, err := runner.New(store.NewMemory(), []provider.Provider{native.New(), mssola.New()},
//		runner.WithWorkers(8),
//		runner.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	uas, err := runner.ReadCorpus(f)
//	if err != nil {
//		return err
//	}
//	if _, err := r.Import(ctx, uas, "corpus.txt"); err != nil {
//		return err
//	}
//	if _, err := r.Parse(ctx); err != nil {
//		return err
//	}
//	if err := r.Evaluate(ctx); err != nil {
//		return err
//	}
//	summary, err := r.Summary(ctx)
//
// Every stage is idempotent: importing a known user agent reuses its row and
// parsing or evaluating again overwrites the previous rows.
package runner
