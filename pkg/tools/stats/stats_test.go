package stats

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/rusty-server/pkg/rusty"
)

func newMockRequest() mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "get_stats",
		},
	}
}

func TestHandler(t *testing.T) {
	Convey("Given a stats tool over a server with one echo", t, func() {
		server := rusty.New(log.New(io.Discard))
		server.Echo("hi")
		tool := New(server)

		So(tool.Name(), ShouldEqual, "get_stats")
		So(*tool.Handle().Annotations.ReadOnlyHint, ShouldBeTrue)

		Convey("When reading stats twice", func() {
			first, err := tool.Handler(context.Background(), newMockRequest())
			So(err, ShouldBeNil)
			second, err := tool.Handler(context.Background(), newMockRequest())
			So(err, ShouldBeNil)

			Convey("Both reports should show the single request", func() {
				body := first.Content[0].(mcp.TextContent).Text
				So(strings.HasPrefix(body, "Server Statistics:\n"), ShouldBeTrue)
				So(body, ShouldContainSubstring, "- Total requests processed: 1\n")
				So(body, ShouldEndWith, "- Uptime: running")
				So(second.Content[0].(mcp.TextContent).Text, ShouldEqual, body)
				So(server.Requests(), ShouldEqual, uint64(1))
			})
		})
	})
}
