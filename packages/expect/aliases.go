package expect

// Aliases maps every alternate predicate name to the predicate it calls.
// Aliases are one level deep: every value is a canonical predicate.
var Aliases = map[string]string{
	"ToBeAn":           "ToBeA",
	"ToNotBeAn":        "ToNotBeA",
	"ToBeTruthy":       "ToExist",
	"ToBeFalsy":        "ToNotExist",
	"ToBeFewerThan":    "ToBeLessThan",
	"ToBeMoreThan":     "ToBeGreaterThan",
	"ToContain":        "ToInclude",
	"ToNotContain":     "ToExclude",
	"ToNotInclude":     "ToExclude",
	"ToContainKey":     "ToIncludeKey",
	"ToNotContainKey":  "ToExcludeKey",
	"ToNotIncludeKey":  "ToExcludeKey",
	"ToContainKeys":    "ToIncludeKeys",
	"ToNotContainKeys": "ToExcludeKeys",
	"ToNotIncludeKeys": "ToExcludeKeys",
}

func (e *Expectation) ToBeAn(typeOrName any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToBeA(typeOrName, msg...)
}

func (e *Expectation) ToNotBeAn(typeOrName any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToNotBeA(typeOrName, msg...)
}

func (e *Expectation) ToBeTruthy(msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExist(msg...)
}

func (e *Expectation) ToBeFalsy(msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToNotExist(msg...)
}

func (e *Expectation) ToBeFewerThan(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToBeLessThan(value, msg...)
}

func (e *Expectation) ToBeMoreThan(value any, msg ...Message) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToBeGreaterThan(value, msg...)
}

func (e *Expectation) ToContain(value any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToInclude(value, opts...)
}

func (e *Expectation) ToNotContain(value any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExclude(value, opts...)
}

func (e *Expectation) ToNotInclude(value any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExclude(value, opts...)
}

func (e *Expectation) ToContainKey(key any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToIncludeKey(key, opts...)
}

func (e *Expectation) ToNotContainKey(key any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExcludeKey(key, opts...)
}

func (e *Expectation) ToNotIncludeKey(key any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExcludeKey(key, opts...)
}

func (e *Expectation) ToContainKeys(keys any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToIncludeKeys(keys, opts...)
}

func (e *Expectation) ToNotContainKeys(keys any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExcludeKeys(keys, opts...)
}

func (e *Expectation) ToNotIncludeKeys(keys any, opts ...ContainOption) *Expectation {
	if e.helper != nil {
		e.helper.Helper()
	}
	return e.ToExcludeKeys(keys, opts...)
}
