package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/Additional-Code/order-service/pkg/orderpb"
)

const defaultAddr = "[::1]:50051"

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Call a running order service",
	}
	cmd.PersistentFlags().String("addr", defaultAddr, "gRPC address of the order service")
	cmd.PersistentFlags().Duration("timeout", 5*time.Second, "Per-call timeout")

	placeCmd := &cobra.Command{
		Use:     "place",
		Short:   "Place an order",
		Example: "  orderctl orders place --item SKU-A:100:2 --item SKU-B:50:1",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetStringArray("item")
			items, err := parseItems(raw)
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, client orderpb.OrderClient) error {
				resp, err := client.Place(ctx, &orderpb.OrderRequest{Items: items})
				if err != nil {
					return err
				}
				return printMessage(cmd, resp)
			})
		},
	}
	placeCmd.Flags().StringArray("item", nil, "Line item as SKU:PRICE:QUANTITY (repeatable)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders with their items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client orderpb.OrderClient) error {
				resp, err := client.GetOrderList(ctx, &orderpb.Empty{})
				if err != nil {
					return err
				}
				return printMessage(cmd, resp)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [order-id]",
		Short: "Delete an order and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q: %w", args[0], err)
			}
			return withClient(cmd, func(ctx context.Context, client orderpb.OrderClient) error {
				resp, err := client.DeleteOrder(ctx, &orderpb.DeleteOrderRequest{OrderId: id})
				if err != nil {
					return err
				}
				return printMessage(cmd, resp)
			})
		},
	}

	cmd.AddCommand(placeCmd, listCmd, deleteCmd)
	return cmd
}

// parseItems turns SKU:PRICE:QUANTITY strings into wire line items. The SKU may itself contain colons.
func parseItems(raw []string) ([]*orderpb.OrderLineItem, error) {
	items := make([]*orderpb.OrderLineItem, 0, len(raw))
	for _, value := range raw {
		parts := strings.Split(value, ":")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid item %q: expected SKU:PRICE:QUANTITY", value)
		}
		n := len(parts)
		price, err := strconv.ParseInt(parts[n-2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price in %q: %w", value, err)
		}
		quantity, err := strconv.ParseInt(parts[n-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", value, err)
		}
		items = append(items, &orderpb.OrderLineItem{
			SkuCode:  strings.Join(parts[:n-2], ":"),
			Price:    price,
			Quantity: quantity,
		})
	}
	return items, nil
}

func withClient(cmd *cobra.Command, fn func(context.Context, orderpb.OrderClient) error) error {
	addr, _ := cmd.Flags().GetString("addr")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	return fn(ctx, orderpb.NewOrderClient(conn))
}

func printMessage(cmd *cobra.Command, msg proto.Message) error {
	raw, err := protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}.Marshal(msg)
	if err != nil {
		return err
	}
	var pretty any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		return err
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
