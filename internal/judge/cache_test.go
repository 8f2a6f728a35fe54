package judge

import (
	"context"
	"errors"
	"testing"
)

type memCache struct {
	m map[string]string
}

func (c *memCache) Get(key string) (string, bool) {
	v, ok := c.m[key]
	return v, ok
}

func (c *memCache) Put(key, response string) error {
	c.m[key] = response
	return nil
}

type countingJudge struct {
	calls int
	resp  string
	err   error
}

func (j *countingJudge) Validate(context.Context, string) (string, error) {
	j.calls++
	return j.resp, j.err
}

func TestWithCache_HitSkipsInvocation(t *testing.T) {
	inner := &countingJudge{resp: `{"is_valid": true}`}
	j := WithCache(inner, &memCache{m: map[string]string{}}, "haiku")

	first, err := j.Validate(context.Background(), "prompt")
	if err != nil {
		t.Fatal(err)
	}
	second, err := j.Validate(context.Background(), "prompt")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("cached response differs: %q vs %q", first, second)
	}
	if inner.calls != 1 {
		t.Errorf("inner judge called %d times, want 1", inner.calls)
	}
}

func TestWithCache_DistinctPromptsMiss(t *testing.T) {
	inner := &countingJudge{resp: `{"is_valid": true}`}
	j := WithCache(inner, &memCache{m: map[string]string{}}, "haiku")
	j.Validate(context.Background(), "prompt one")
	j.Validate(context.Background(), "prompt two")
	if inner.calls != 2 {
		t.Errorf("inner judge called %d times, want 2", inner.calls)
	}
}

func TestWithCache_FailuresNotCached(t *testing.T) {
	inner := &countingJudge{err: errors.New("boom")}
	c := &memCache{m: map[string]string{}}
	j := WithCache(inner, c, "haiku")

	if _, err := j.Validate(context.Background(), "prompt"); err == nil {
		t.Fatal("want error")
	}
	if len(c.m) != 0 {
		t.Errorf("failure must not be cached, cache has %d entries", len(c.m))
	}
}
