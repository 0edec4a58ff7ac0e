package brew

import (
	"reflect"
	"testing"
)

func TestInstallOptionsFlags(t *testing.T) {
	tests := []struct {
		name string
		opts *InstallOptions
		want []string
	}{
		{
			name: "zero value",
			opts: NewInstallOptions(),
			want: nil,
		},
		{
			name: "head only",
			opts: NewInstallOptions().Head(),
			want: []string{"--HEAD"},
		},
		{
			name: "force only",
			opts: NewInstallOptions().Force(),
			want: []string{"--force"},
		},
		{
			name: "env std only",
			opts: NewInstallOptions().EnvStd(),
			want: []string{"--env=std"},
		},
		{
			name: "head force env-std in fixed order",
			opts: NewInstallOptions().Head().Force().EnvStd(),
			want: []string{"--HEAD", "--force", "--env=std"},
		},
		{
			name: "setter order does not change flag order",
			opts: NewInstallOptions().EnvStd().Force().Head(),
			want: []string{"--HEAD", "--force", "--env=std"},
		},
		{
			name: "extras follow the well-known flags",
			opts: NewInstallOptions().Force().With("--with-git", "--with-openssl"),
			want: []string{"--force", "--with-git", "--with-openssl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.Flags()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInstallOptionsForced(t *testing.T) {
	if NewInstallOptions().Forced() {
		t.Error("zero value Forced() = true, want false")
	}
	if !NewInstallOptions().Force().Forced() {
		t.Error("Force().Forced() = false, want true")
	}
}
