package repair

import "testing"

func TestPolicyByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"empty defaults to keep-first", "", "keep-first", false},
		{"keep-first", "keep-first", "keep-first", false},
		{"keep-richest", "keep-richest", "keep-richest", false},
		{"unknown", "keep-newest", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := PolicyByName(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("PolicyByName(%q) did not fail", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("PolicyByName(%q): %v", tt.arg, err)
			}
			if p.Name() != tt.want {
				t.Errorf("policy = %q, want %q", p.Name(), tt.want)
			}
		})
	}
}

// TestPolicyLosersContract verifies the exactly-one-survivor guarantee.
//
// Scenario: duplicate groups of several sizes under both policies
// Expected: losers count is always len(group)-1 and every loser is a
// group element
func TestPolicyLosersContract(t *testing.T) {
	t.Parallel()

	src := `<Type>
  <Members>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>short</summary></Docs></Member>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>a much longer summary body</summary></Docs></Member>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /></Member>
  </Members>
</Type>`

	for _, policy := range []SurvivorPolicy{KeepFirst, KeepRichest} {
		t.Run(policy.Name(), func(t *testing.T) {
			t.Parallel()
			d := parseDoc(t, src)
			group := d.MemberList()

			losers := policy.Losers(group)
			if len(losers) != len(group)-1 {
				t.Fatalf("losers = %d, want %d", len(losers), len(group)-1)
			}
			for _, loser := range losers {
				found := false
				for _, m := range group {
					if m == loser {
						found = true
					}
				}
				if !found {
					t.Error("loser is not a member of the group")
				}
			}
		})
	}
}

func TestPolicyLosersSingleton(t *testing.T) {
	t.Parallel()

	d := parseDoc(t, `<Type><Members><Member /></Members></Type>`)
	group := d.MemberList()
	if losers := KeepFirst.Losers(group); len(losers) != 0 {
		t.Errorf("singleton group produced %d losers", len(losers))
	}
	if losers := KeepRichest.Losers(group); len(losers) != 0 {
		t.Errorf("singleton group produced %d losers", len(losers))
	}
}
