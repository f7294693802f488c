package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-account-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	engine     *usecase.TransactionEngine
	statements *usecase.StatementService
}

func NewGrpcServer(engine *usecase.TransactionEngine, statements *usecase.StatementService) *GrpcServer {
	return &GrpcServer{
		engine:     engine,
		statements: statements,
	}
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.OperationRequest) (*pb.OperationResponse, error) {
	return s.operate(ctx, req, s.engine.Deposit)
}

func (s *GrpcServer) Pay(ctx context.Context, req *pb.OperationRequest) (*pb.OperationResponse, error) {
	return s.operate(ctx, req, s.engine.Pay)
}

func (s *GrpcServer) Transfer(ctx context.Context, req *pb.OperationRequest) (*pb.OperationResponse, error) {
	return s.operate(ctx, req, s.engine.Transfer)
}

func (s *GrpcServer) operate(ctx context.Context, req *pb.OperationRequest, op func(context.Context, domain.OperationRequest) (domain.Receipt, error)) (*pb.OperationResponse, error) {
	// 1. 金額解析
	amount, err := decimal.NewFromString(req.GetAmount())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount %q", req.GetAmount())
	}

	// 2. 組裝 Domain 請求
	opReq := domain.OperationRequest{
		Source:      toDomainRef(req.GetSource()),
		Amount:      amount,
		PlanAccount: req.GetPlanAccount(),
		Description: req.GetDescription(),
	}
	if req.GetDestination() != nil {
		dst := toDomainRef(req.GetDestination())
		opReq.Destination = &dst
	}

	// 3. 執行交易
	receipt, err := op(ctx, opReq)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.OperationResponse{
		NewBalance: receipt.NewBalance.String(),
		Message:    receipt.Message,
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	id := req.GetAccountId()
	if id == 0 {
		ref := toDomainRef(req.GetAccount())
		account, err := s.statements.Account(ctx, ref.Login, ref.Tag)
		if err != nil {
			return nil, toStatus(err)
		}
		id = account.ID
	}
	balance, err := s.engine.Balance(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetBalanceResponse{
		Balance: balance.String(),
	}, nil
}

func (s *GrpcServer) GetStatement(ctx context.Context, req *pb.GetStatementRequest) (*pb.GetStatementResponse, error) {
	var rng *domain.DateRange
	switch {
	case req.GetFrom() != nil && req.GetTo() != nil:
		rng = &domain.DateRange{From: req.GetFrom().AsTime(), To: req.GetTo().AsTime()}
	case req.GetFrom() != nil || req.GetTo() != nil:
		return nil, status.Error(codes.InvalidArgument, "from and to must be given together")
	}

	ref := toDomainRef(req.GetAccount())
	st, err := s.statements.Statement(ctx, ref.Login, ref.Tag, rng)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.GetStatementResponse{
		Account:  fromDomainRef(st.Account),
		Balance:  st.Balance.String(),
		Postings: make([]*pb.StatementLine, 0, len(st.Postings)),
	}
	for _, line := range st.Postings {
		resp.Postings = append(resp.Postings, &pb.StatementLine{
			CreatedAt:      timestamppb.New(line.CreatedAt),
			CounterAccount: fromDomainRef(line.CounterAccount),
			PlanAccount:    line.PlanAccountName,
			Amount:         line.Amount.String(),
			Description:    line.Description,
		})
	}
	return resp, nil
}

func (s *GrpcServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	accounts, err := s.statements.Accounts(ctx, req.GetLogin())
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListAccountsResponse{Accounts: make([]*pb.Account, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, &pb.Account{
			Id:      a.ID,
			Login:   a.Login,
			Tag:     string(a.Tag),
			Name:    a.Name,
			Balance: a.Balance.String(),
		})
	}
	return resp, nil
}

// toStatus 將 domain 錯誤轉為 gRPC status
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidDateRange):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrInsufficientFunds):
		code = codes.FailedPrecondition
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrPlanAccountNotFound):
		code = codes.NotFound
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

// nil 參照視為空帳戶，查詢時回 NotFound
func toDomainRef(r *pb.AccountRef) domain.AccountRef {
	return domain.AccountRef{Login: r.GetLogin(), Tag: domain.Tag(r.GetTag())}
}

func fromDomainRef(r domain.AccountRef) *pb.AccountRef {
	return &pb.AccountRef{Login: r.Login, Tag: string(r.Tag)}
}

var _ pb.LedgerServiceServer = (*GrpcServer)(nil)
