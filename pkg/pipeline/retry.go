package pipeline

import "context"

// retry invokes fn up to attempts times, stopping at the first success.
// No attempt is made once ctx is done. The last failure is returned when
// every attempt fails. attempts below one behaves as one attempt.
func retry(ctx context.Context, attempts int, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return err
}
