//go:build gen

package veloq

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gen\" -package veloq -self_package github.com/veloq/veloq -destination mock_router_test.go github.com/veloq/veloq Router"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gen\" -package veloq -self_package github.com/veloq/veloq -destination mock_congestion_controller_test.go github.com/veloq/veloq CongestionController"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gen\" -package veloq -self_package github.com/veloq/veloq -destination mock_stream_manager_test.go github.com/veloq/veloq StreamManager"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gen\" -package veloq -self_package github.com/veloq/veloq -destination mock_crypto_session_test.go github.com/veloq/veloq CryptoSession"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gen\" -package veloq -self_package github.com/veloq/veloq -destination mock_flow_controller_test.go github.com/veloq/veloq FlowController"
