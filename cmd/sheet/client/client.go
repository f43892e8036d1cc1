// Package client provides commands that call a running sheet gRPC server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running sheet server",
	Long:  `Client commands make real gRPC requests against a sheet server started with serve.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(updateFieldCmd)
	ClientCmd.AddCommand(addRowCmd)
	ClientCmd.AddCommand(listOptionsCmd)
}

// createSheetClient creates a sheet service client
func createSheetClient() (v1alpha1.SheetServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

// call sends one request and prints the response as JSON
func call(cmd *cobra.Command, method string, fields map[string]interface{}) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return describe(method, err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// describe turns a status error back into a readable one, keeping its
// metadata
func describe(method string, err error) error {
	back := errors.FromGRPCError(err)
	if meta := errors.GetMeta(back); len(meta) > 0 {
		return fmt.Errorf("%s failed: %s %v", method, errors.GetMessage(back), meta)
	}
	return fmt.Errorf("%s failed: %s (%s)", method, errors.GetMessage(back), errors.GetCode(back))
}
