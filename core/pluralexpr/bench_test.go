package pluralexpr_test

import (
	"testing"

	"github.com/ravenlost/locale/core/pluralexpr"
)

const russianExpr = "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2"

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pluralexpr.Compile(russianExpr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	expr, err := pluralexpr.Compile(russianExpr)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := expr.Eval(i); err != nil {
			b.Fatal(err)
		}
	}
}
