package network

import (
	"errors"
	"io"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/ui"
)

// Tcp serves one console game per connection.
type Tcp struct {
	addr   string
	tables Tables
}

func NewTcpServer(addr string, tables Tables) Tcp {
	return Tcp{addr: addr, tables: tables}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	return t.serve(listener)
}

func (t Tcp) serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			if err := t.handle(conn); err != nil && !errors.Is(err, io.EOF) {
				log.Error(err)
			}
		})
	}
}

func (t Tcp) handle(conn net.Conn) error {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error(err)
		}
	}()
	log.Infof("new player connected from %s\n", conn.RemoteAddr())

	console := ui.NewConsole(conn, conn, 0)
	name, count, err := console.Setup(conn.RemoteAddr().String())
	if err != nil {
		return err
	}
	table, err := service.CreateTable(t.tables.config(name, count, console))
	if err != nil {
		console.Println(err.Error())
		return err
	}
	defer func() {
		_ = service.DeleteTable(table.ID)
	}()
	return console.Play(table)
}
