// internal/sandbox/driver.go
// The sandbox driver runs one-shot containers to completion: create, start,
// wait with a hard timeout, drain logs, and always remove the container
// before returning, regardless of which path got there.

package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

// ErrExecutionTimeout is returned when a run exceeds its wall-clock budget.
var ErrExecutionTimeout = errors.New("sandbox: execution timed out")

// Result is the outcome of a completed (or timed-out) container run.
type Result struct {
	StatusCode int64
	Stdout     string
	Stderr     string
}

// RunSpec describes one sandboxed invocation.
type RunSpec struct {
	Image       string
	Cmd         []string
	Mounts      []Mount
	NetworkNone bool
	Timeout     time.Duration
}

// Mount is a host-directory-to-container-path bind mount.
type Mount struct {
	HostPath      string
	ContainerPath string
}

// Driver runs containers via the Docker Engine API.
type Driver struct {
	cli *client.Client
}

// New wraps an already-configured Docker client.
func New(cli *client.Client) *Driver {
	return &Driver{cli: cli}
}

// Run creates, starts, waits on, and always removes a container for one
// RunSpec. The container is guaranteed to be gone by the time Run returns,
// whether it finished naturally, timed out, or errored.
func (d *Driver) Run(ctx context.Context, spec RunSpec) (Result, error) {
	hostCfg := &container.HostConfig{}
	for _, m := range spec.Mounts {
		hostCfg.Binds = append(hostCfg.Binds, fmt.Sprintf("%s:%s", m.HostPath, m.ContainerPath))
	}
	if spec.NetworkNone {
		hostCfg.NetworkMode = "none"
	}

	created, err := d.cli.ContainerCreate(ctx, &container.Config{
		Image:        spec.Image,
		Cmd:          spec.Cmd,
		AttachStdout: true,
		AttachStderr: true,
	}, hostCfg, nil, nil, "")
	if err != nil {
		return Result{}, fmt.Errorf("sandbox: create container: %w", err)
	}

	res, runErr := d.startAndWait(ctx, created.ID, spec.Timeout)

	removeErr := d.cli.ContainerRemove(context.Background(), created.ID, container.RemoveOptions{Force: true})
	if runErr != nil {
		return Result{}, runErr
	}
	if removeErr != nil {
		return Result{}, fmt.Errorf("sandbox: remove container: %w", removeErr)
	}

	return res, nil
}

func (d *Driver) startAndWait(ctx context.Context, containerID string, timeout time.Duration) (Result, error) {
	if err := d.cli.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return Result{}, fmt.Errorf("sandbox: start container: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	statusCh, errCh := d.cli.ContainerWait(waitCtx, containerID, container.WaitConditionNotRunning)

	var statusCode int64
	select {
	case <-waitCtx.Done():
		return Result{}, ErrExecutionTimeout
	case err := <-errCh:
		if err != nil {
			return Result{}, fmt.Errorf("sandbox: wait container: %w", err)
		}
	case status := <-statusCh:
		statusCode = status.StatusCode
	}

	stdout, stderr, err := d.collectLogs(context.Background(), containerID)
	if err != nil {
		return Result{}, err
	}

	return Result{StatusCode: statusCode, Stdout: stdout, Stderr: stderr}, nil
}

func (d *Driver) collectLogs(ctx context.Context, containerID string) (string, string, error) {
	reader, err := d.cli.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		return "", "", fmt.Errorf("sandbox: read logs: %w", err)
	}
	defer reader.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, reader); err != nil && !errors.Is(err, io.EOF) {
		return "", "", fmt.Errorf("sandbox: demux logs: %w", err)
	}

	if !utf8.Valid(stdout.Bytes()) || !utf8.Valid(stderr.Bytes()) {
		return "", "", fmt.Errorf("sandbox: container output was not valid UTF-8")
	}

	return stdout.String(), stderr.String(), nil
}
