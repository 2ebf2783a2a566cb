package upstream

// Result 表示一次次要资源抓取的显式结果，调用方按 OK() 分支处理降级。
type Result[T any] struct {
	value T
	err   *FetchError
	ok    bool
}

// Ok 包装成功值。
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail 包装失败；非 FetchError 会被标记为 KindTransient。
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = Transient(errMissingValue)
	}
	fe := AsFetchError(err)
	if fe.Kind != KindTransient {
		fe = Transient(fe)
	}
	return Result[T]{err: fe}
}

// Missing 表示资源本就不存在（例如平台未提供图标地址）。
func Missing[T any]() Result[T] {
	return Result[T]{err: Transient(errMissingValue)}
}

func (r Result[T]) OK() bool { return r.ok }

// Get 返回值与是否成功。
func (r Result[T]) Get() (T, bool) { return r.value, r.ok }

// Err 返回失败原因，成功时为 nil。
func (r Result[T]) Err() *FetchError { return r.err }

// ValueOr 在失败时返回 fallback。
func (r Result[T]) ValueOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}
