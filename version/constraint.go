package version

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// tuple converts a version tuple into a Starlark tuple.
func tuple(t [3]int) starlark.Tuple {
	return starlark.Tuple{
		starlark.MakeInt(t[0]),
		starlark.MakeInt(t[1]),
		starlark.MakeInt(t[2]),
	}
}

// predeclared returns the names visible to constraint expressions.
func predeclared() starlark.StringDict {
	pred := starlark.StringDict{
		"data_git_hash":     starlark.String(DataGitHash),
		"data_git_describe": starlark.String(DataGitDescribe),
	}
	for _, rec := range records {
		name := "version"
		if rec.Axis != Package {
			name = rec.Axis.String() + "_version"
		}
		pred[name] = tuple(rec.Tuple)
		pred[name+"_str"] = starlark.String(rec.String)
	}
	return pred
}

// Satisfies evaluates a boolean Starlark expression over the bundle
// versions, for example
//
//	data_version >= (0, 0, 500) and tool_version[2] > 100
//
// Tuples are bound to version, data_version and tool_version; the strings
// to version_str, data_version_str and tool_version_str; and the data
// provenance to data_git_hash and data_git_describe.
func Satisfies(expr string) (ok bool, err error) {
	thread := starlark.Thread{Name: "constraint"}
	opts := syntax.FileOptions{}
	parsed, err := opts.ParseExpr("constraint", expr, 0)
	if err != nil {
		err = &ErrConstraint{Expr: expr, Err: err}
		return
	}

	st_rc, err := starlark.EvalExprOptions(&opts, &thread, parsed, predeclared())
	if err != nil {
		err = &ErrConstraint{Expr: expr, Err: err}
		return
	}

	st_bool, found := st_rc.(starlark.Bool)
	if !found {
		err = &ErrConstraint{Expr: expr, Err: ErrConstraintType}
		return
	}

	ok = bool(st_bool)
	return
}
