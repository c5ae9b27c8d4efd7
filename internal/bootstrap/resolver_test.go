package bootstrap

import "testing"

func TestEnvironmentResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolver EnvironmentResolver
		want     string
	}{
		{
			name:     "console override wins",
			resolver: EnvironmentResolver{Override: "staging", Console: true, Ambient: "production"},
			want:     "staging",
		},
		{
			name:     "override ignored outside console",
			resolver: EnvironmentResolver{Override: "staging", Console: false, Ambient: "production"},
			want:     "production",
		},
		{
			name:     "empty override falls back to ambient",
			resolver: EnvironmentResolver{Console: true, Ambient: "production"},
			want:     "production",
		},
		{
			name:     "nothing set",
			resolver: EnvironmentResolver{},
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.resolver.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
