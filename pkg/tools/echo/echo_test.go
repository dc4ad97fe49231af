package echo

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/rusty-server/pkg/rusty"
)

func newMockRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "echo",
			Arguments: args,
		},
	}
}

func text(result *mcp.CallToolResult) string {
	return result.Content[0].(mcp.TextContent).Text
}

func TestNew(t *testing.T) {
	Convey("When creating a new echo tool", t, func() {
		tool := New(rusty.New(log.New(io.Discard)))

		Convey("It should have the correct name", func() {
			So(tool.Name(), ShouldEqual, "echo")
			So(tool.Handle().Name, ShouldEqual, "echo")
		})

		Convey("It should require a message", func() {
			So(tool.Handle().InputSchema.Required, ShouldResemble, []string{"message"})
			So(tool.Handle().InputSchema.Properties, ShouldContainKey, "message")
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given an echo tool", t, func() {
		server := rusty.New(log.New(io.Discard))
		tool := New(server)

		Convey("When echoing a message", func() {
			result, err := tool.Handler(context.Background(), newMockRequest(map[string]any{"message": "hi"}))

			Convey("It should return the prefixed message and count the request", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				So(text(result), ShouldEqual, "Echo: hi")
				So(server.Requests(), ShouldEqual, uint64(1))
			})
		})

		Convey("When echoing an empty message", func() {
			result, err := tool.Handler(context.Background(), newMockRequest(map[string]any{"message": ""}))

			Convey("It should return the bare prefix", func() {
				So(err, ShouldBeNil)
				So(text(result), ShouldEqual, "Echo: ")
			})
		})

		Convey("When the message is missing", func() {
			result, err := tool.Handler(context.Background(), newMockRequest(map[string]any{}))

			Convey("It should return an error result without counting", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				So(text(result), ShouldEqual, "missing required parameter: 'message'")
				So(server.Requests(), ShouldEqual, uint64(0))
			})
		})
	})
}
