package mock

import (
	"context"
	"net"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

// Local is a controller served in-process over an in-memory connection.
type Local struct {
	Conn     *grpc.ClientConn
	Client   executorapi.ExecutorAPIClient
	server   *grpc.Server
	listener *bufconn.Listener
}

// ServeLocal starts the controller's gRPC server on an in-memory listener and dials it.
func (c *Controller) ServeLocal(ctx context.Context) (*Local, error) {
	listener := bufconn.Listen(bufSize)
	server := c.NewGRPCServer(ctx)
	go func() {
		_ = server.Serve(listener)
	}()

	conn, err := grpc.DialContext(ctx, "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithInsecure(),
	)
	if err != nil {
		server.Stop()
		return nil, errors.Wrap(err, "cannot dial in-memory controller")
	}
	return &Local{
		Conn:     conn,
		Client:   executorapi.NewExecutorAPIClient(conn),
		server:   server,
		listener: listener,
	}, nil
}

func (l *Local) Close() {
	_ = l.Conn.Close()
	l.server.Stop()
	_ = l.listener.Close()
}
