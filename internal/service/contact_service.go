package service

import (
    "context"
    "errors"
    "fmt"

    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/d60-Lab/social-graph/internal/cache"
    "github.com/d60-Lab/social-graph/internal/model"
    "github.com/d60-Lab/social-graph/internal/repository"
    "github.com/d60-Lab/social-graph/pkg/logger"
)

// ContactService 好友申请状态机 + 双向联系人边
type ContactService interface {
    SendRequest(ctx context.Context, requesterID, targetUsername string) (string, error)
    AcceptRequest(ctx context.Context, receiverID, requestID string) error
    RejectRequest(ctx context.Context, receiverID, requestID string) error
    RemoveContact(ctx context.Context, userID, otherID string) error
    ListReceived(ctx context.Context, userID string) ([]*model.FriendRequest, error)
    ListSent(ctx context.Context, userID string) ([]*model.FriendRequest, error)
    ListContacts(ctx context.Context, userID string) ([]string, error)
}

type contactService struct {
    db       *gorm.DB
    users    repository.UserRepository
    requests repository.FriendRequestRepository
    contacts repository.ContactRepository
    cache    *cache.ContactsCache
}

func NewContactService(db *gorm.DB, users repository.UserRepository, requests repository.FriendRequestRepository, contacts repository.ContactRepository, contactsCache *cache.ContactsCache) ContactService {
    return &contactService{db: db, users: users, requests: requests, contacts: contacts, cache: contactsCache}
}

// SendRequest 按登录名解析目标并创建 pending 申请。
// 查重（双向 pending、已有边）和写入放在同一个事务里，
// 并发的两次 SendRequest 不会都穿过查重。
func (s *contactService) SendRequest(ctx context.Context, requesterID, targetUsername string) (string, error) {
    target, err := s.users.FindByUsername(ctx, targetUsername)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return "", fmt.Errorf("%w: target user %q not found", ErrValidation, targetUsername)
        }
        return "", err
    }
    if target.DeactivatedAt != nil {
        return "", fmt.Errorf("%w: target user %q is deactivated", ErrValidation, targetUsername)
    }
    if target.ID == requesterID {
        return "", fmt.Errorf("%w: cannot send request to self", ErrValidation)
    }

    var requestID string
    err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        requests := repository.NewFriendRequestRepository(tx)
        contacts := repository.NewContactRepository(tx)

        pending, err := requests.HasPendingBetween(ctx, requesterID, target.ID)
        if err != nil {
            return err
        }
        if pending {
            return fmt.Errorf("%w: pending request already exists", ErrConflict)
        }
        exists, err := contacts.Exists(ctx, requesterID, target.ID)
        if err != nil {
            return err
        }
        if exists {
            return fmt.Errorf("%w: users are already contacts", ErrConflict)
        }

        req := &model.FriendRequest{SenderID: requesterID, ReceiverID: target.ID, Status: model.RequestStatusPending}
        if err := requests.Create(ctx, req); err != nil {
            return err
        }
        requestID = req.ID
        return nil
    })
    if err != nil {
        return "", err
    }
    return requestID, nil
}

// AcceptRequest 单事务：认领 pending 行、建边（缺失时）、置 accepted。
// 任一步失败整体回滚，申请保持 pending，不留半截边。
func (s *contactService) AcceptRequest(ctx context.Context, receiverID, requestID string) error {
    var senderID string
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        requests := repository.NewFriendRequestRepository(tx)
        contacts := repository.NewContactRepository(tx)

        req, err := requests.FindPendingForReceiver(ctx, requestID, receiverID)
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return fmt.Errorf("%w: pending request %q not found for receiver", ErrNotFound, requestID)
            }
            return err
        }
        senderID = req.SenderID

        exists, err := contacts.Exists(ctx, req.SenderID, req.ReceiverID)
        if err != nil {
            return err
        }
        if !exists {
            if err := contacts.Create(ctx, req.SenderID, req.ReceiverID); err != nil {
                return err
            }
        }
        return requests.UpdateStatus(ctx, req.ID, model.RequestStatusAccepted)
    })
    if err != nil {
        return err
    }
    if cErr := s.cache.Invalidate(ctx, senderID, receiverID); cErr != nil {
        logger.Warn("invalidate contacts cache failed", zap.Error(cErr), zap.String("request", requestID))
    }
    return nil
}

// RejectRequest 与 accept 相同的认领语义，只改状态，无边副作用
func (s *contactService) RejectRequest(ctx context.Context, receiverID, requestID string) error {
    return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        requests := repository.NewFriendRequestRepository(tx)
        req, err := requests.FindPendingForReceiver(ctx, requestID, receiverID)
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return fmt.Errorf("%w: pending request %q not found for receiver", ErrNotFound, requestID)
            }
            return err
        }
        return requests.UpdateStatus(ctx, req.ID, model.RequestStatusRejected)
    })
}

// RemoveContact 软删边，规范序下只有一种行形态可删
func (s *contactService) RemoveContact(ctx context.Context, userID, otherID string) error {
    affected, err := s.contacts.SoftDelete(ctx, userID, otherID)
    if err != nil {
        return err
    }
    if affected == 0 {
        return fmt.Errorf("%w: contact edge not found", ErrNotFound)
    }
    if cErr := s.cache.Invalidate(ctx, userID, otherID); cErr != nil {
        logger.Warn("invalidate contacts cache failed", zap.Error(cErr), zap.String("user", userID))
    }
    return nil
}

func (s *contactService) ListReceived(ctx context.Context, userID string) ([]*model.FriendRequest, error) {
    return s.requests.ListPendingByReceiver(ctx, userID)
}

func (s *contactService) ListSent(ctx context.Context, userID string) ([]*model.FriendRequest, error) {
    return s.requests.ListPendingBySender(ctx, userID)
}

// ListContacts 联系人 id 列表，redis 索引优先，缺失回源并回填
func (s *contactService) ListContacts(ctx context.Context, userID string) ([]string, error) {
    if ids, hit, err := s.cache.GetPartners(ctx, userID); err == nil && hit {
        return ids, nil
    } else if err != nil {
        logger.Warn("contacts cache read failed", zap.Error(err), zap.String("user", userID))
    }
    ids, err := s.contacts.ListPartners(ctx, userID)
    if err != nil {
        return nil, err
    }
    if cErr := s.cache.SetPartners(ctx, userID, ids); cErr != nil {
        logger.Warn("contacts cache write failed", zap.Error(cErr), zap.String("user", userID))
    }
    return ids, nil
}
