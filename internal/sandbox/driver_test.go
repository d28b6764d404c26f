package sandbox

import "testing"

func TestMountFormatting(t *testing.T) {
	m := Mount{HostPath: "/tmp/stage123", ContainerPath: "/app"}
	got := m.HostPath + ":" + m.ContainerPath
	want := "/tmp/stage123:/app"
	if got != want {
		t.Fatalf("mount bind string = %q, want %q", got, want)
	}
}

func TestRunSpecNetworkNone(t *testing.T) {
	spec := RunSpec{Image: "openjdk:8-alpine", NetworkNone: true}
	if !spec.NetworkNone {
		t.Fatalf("expected NetworkNone to be true for compile specs")
	}
}
