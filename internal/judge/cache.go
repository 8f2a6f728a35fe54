package judge

import "context"

// ResponseCache stores raw judge responses keyed by an opaque string.
// Implemented by internal/cache.
type ResponseCache interface {
	Get(key string) (string, bool)
	Put(key, response string) error
}

// WithCache wraps a judge so identical prompts reuse a previously captured
// response instead of re-invoking the external process. keyPrefix should
// identify anything outside the prompt that affects the answer, such as the
// model name. Invocation failures are never cached.
func WithCache(j Judge, c ResponseCache, keyPrefix string) Judge {
	return &cachedJudge{inner: j, cache: c, prefix: keyPrefix}
}

type cachedJudge struct {
	inner  Judge
	cache  ResponseCache
	prefix string
}

func (c *cachedJudge) Validate(ctx context.Context, prompt string) (string, error) {
	key := c.prefix + "\x00" + prompt
	if resp, ok := c.cache.Get(key); ok {
		return resp, nil
	}
	resp, err := c.inner.Validate(ctx, prompt)
	if err != nil {
		return "", err
	}
	_ = c.cache.Put(key, resp)
	return resp, nil
}
